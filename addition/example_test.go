package addition_test

import (
	"errors"
	"fmt"

	"code.selman.me/addcalc/addition"
)

func ExampleSum() {
	zoneA, zoneB, zoneC := addition.Int(25), addition.Int(18), addition.Int(32)

	total, err := addition.Sum(zoneA, zoneB, zoneC)
	if err != nil {
		panic(err)
	}

	fmt.Println("total trees:", total)
	// Output: total trees: 75
}

func ExampleSumList() {
	heights := []float64{12.5, 15.2, 8.7, 22.1, 18.9}

	total, err := addition.SumList(heights)
	if err != nil {
		panic(err)
	}

	fmt.Printf("total height: %.1fm\n", total.Float64())
	fmt.Printf("average height: %.2fm\n", total.Float64()/float64(len(heights)))
	// Output:
	// total height: 77.4m
	// average height: 15.48m
}

func ExampleSumExpression() {
	total, err := addition.SumExpression("1500 + 2300 + 950 + 1800")
	if err != nil {
		panic(err)
	}
	fmt.Println(total)

	total, _ = addition.SumExpression("1.5+2+0.5")
	fmt.Println(total, total.Kind())

	_, err = addition.SumExpression("2+3-1")
	fmt.Println(errors.Is(err, addition.ErrInvalidCharacter))
	// Output:
	// 6550
	// 4 int
	// true
}
