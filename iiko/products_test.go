package iiko

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sugar = `<productDto>` +
	`<name>Sugar</name>` +
	`<id>1</id>` +
	`<num>A1</num>` +
	`<productType>GOODS</productType>` +
	`<cookingPlaceType>KITCHEN</cookingPlaceType>` +
	`<mainUnit>KG</mainUnit>` +
	`<productCategory>Food</productCategory>` +
	`</productDto>`

func TestParseProducts(t *testing.T) {
	document := `<products>` + sugar + `</products>`

	products, err := parseProducts([]byte(document))
	assert.NoError(t, err)

	expected := []Product{
		{
			Num:              "A1",
			Name:             "Sugar",
			Id:               "1",
			ProductType:      "GOODS",
			CookingPlaceType: "KITCHEN",
			MainUnit:         "KG",
			ProductCategory:  "Food",
		},
	}

	assert.Equal(t, expected, products)
	assert.Equal(t, []string{"A1", "Sugar", "1", "GOODS", "KITCHEN", "KG", "Food"}, products[0].Row())
}

func TestParseProductsSkipsIncompleteNodes(t *testing.T) {
	document := `<products>` +
		sugar +
		`<productDto>` +
		`<name>Salt</name>` +
		`<id>2</id>` +
		`<num>A2</num>` +
		`<productType>GOODS</productType>` +
		`<cookingPlaceType>KITCHEN</cookingPlaceType>` +
		`<productCategory>Food</productCategory>` +
		`</productDto>` +
		`<productDto>` +
		`<name>Flour</name>` +
		`<id>3</id>` +
		`<num>A3</num>` +
		`<productType>GOODS</productType>` +
		`<cookingPlaceType>KITCHEN</cookingPlaceType>` +
		`<mainUnit>KG</mainUnit>` +
		`<productCategory>Food</productCategory>` +
		`</productDto>` +
		`</products>`

	products, err := parseProducts([]byte(document))
	assert.NoError(t, err)

	// Salt has no mainUnit and is skipped; Sugar and Flour keep their relative order
	assert.Len(t, products, 2)
	assert.Equal(t, "Sugar", products[0].Name)
	assert.Equal(t, "Flour", products[1].Name)
}

func TestParseProductsSkipsEmptyFields(t *testing.T) {
	document := `<products>` +
		`<productDto>` +
		`<name></name>` +
		`<id>2</id>` +
		`<num>A2</num>` +
		`<productType>GOODS</productType>` +
		`<cookingPlaceType>KITCHEN</cookingPlaceType>` +
		`<mainUnit>KG</mainUnit>` +
		`<productCategory>Food</productCategory>` +
		`</productDto>` +
		`</products>`

	products, err := parseProducts([]byte(document))
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestParseProductsInvalidXML(t *testing.T) {
	_, err := parseProducts([]byte(`<products><productDto>`))
	assert.Error(t, err)
}

func TestProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		assert.Equal(t, "/products", rq.URL.Path)
		assert.Equal(t, "deadbeef", rq.URL.Query().Get("key"))
		fmt.Fprintf(w, `<products>%s</products>`, sugar)
	}))

	defer server.Close()

	client := NewClient(server.URL, "api_reader", "qwerty")

	products, err := client.Products(context.Background(), "deadbeef")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Sugar", products[0].Name)
}

func TestProductTable(t *testing.T) {
	products := []Product{
		{Num: "A1", Name: "Sugar", Id: "1", ProductType: "GOODS", CookingPlaceType: "KITCHEN", MainUnit: "KG", ProductCategory: "Food"},
		{Num: "A3", Name: "Flour", Id: "3", ProductType: "GOODS", CookingPlaceType: "KITCHEN", MainUnit: "KG", ProductCategory: "Food"},
	}

	table := ProductTable(products)

	assert.Equal(t, ProductHeader, table.Header)
	assert.Equal(t, [][]string{
		{"A1", "Sugar", "1", "GOODS", "KITCHEN", "KG", "Food"},
		{"A3", "Flour", "3", "GOODS", "KITCHEN", "KG", "Food"},
	}, table.Records)
}
