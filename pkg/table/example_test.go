package table_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/csvplot/pkg/table"
)

func ExampleReadCSV() {
	src := "id,speed,rpm\n0,0,0\n1,12.5,830\n"

	t, err := table.ReadCSV(strings.NewReader(src))
	if err != nil {
		fmt.Println(err)
		return
	}
	rpm, _ := t.Index("rpm")
	fmt.Println(t.RowCount(), t.ColumnCount(), t.Value(1, rpm))
	// Output: 2 3 830
}

func ExampleListRows() {
	t, _ := table.New([]string{"id", "torsi"}, [][]float64{{0, 40.2}, {1, 41}})
	for line := range table.ListRows(t) {
		fmt.Println(line)
	}
	// Output:
	// id=0, torsi=40.2
	// id=1, torsi=41
}
