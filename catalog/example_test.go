// SPDX-License-Identifier: MIT
package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/railnet/catalog"
)

func ExampleCatalog_Name() {
	c, _ := catalog.New(
		catalog.Station{Code: "BNR", Name: "Bundaran HI"},
		catalog.Station{Code: "DKT", Name: "Dukuh Atas BNI"},
	)

	fmt.Println(c.Name("DKT"))
	fmt.Println(c.Name("BN"))
	fmt.Println(c.Name("PRI"))

	// Output:
	// Dukuh Atas BNI
	// Bundaran HI
	// Station PRI
}
