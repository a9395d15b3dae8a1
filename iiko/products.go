package iiko

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/iikotools/iiko-app-sheets/table"
)

// Product is a single entry from the iiko product catalog.
type Product struct {
	Num              string
	Name             string
	Id               string
	ProductType      string
	CookingPlaceType string
	MainUnit         string
	ProductCategory  string
}

// ProductHeader is the fixed column schema for product rows, in row order.
var ProductHeader = []string{"num", "name", "id", "productType", "cookingPlaceType", "mainUnit", "productCategory"}

// Row returns the product as a record matching ProductHeader.
func (p Product) Row() []string {
	return []string{p.Num, p.Name, p.Id, p.ProductType, p.CookingPlaceType, p.MainUnit, p.ProductCategory}
}

// ProductTable tabulates a product list against the ProductHeader schema, in
// catalog order.
func ProductTable(products []Product) *table.Table {
	records := make([][]string, len(products))
	for i, p := range products {
		records[i] = p.Row()
	}

	return &table.Table{
		Header:  ProductHeader,
		Records: records,
	}
}

// Products fetches the full product catalog. The /products endpoint replies with an
// XML document of repeated productDto elements.
func (c *Client) Products(ctx context.Context, token string) ([]Product, error) {
	logrus.Debugf("fetching products from iiko")

	body, err := c.get(ctx, "/products", url.Values{
		"key": []string{token},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to fetch product catalog (%w)", err)
	}

	products, err := parseProducts(body)
	if err != nil {
		return nil, err
	}

	logrus.Infof("fetched %v products", len(products))

	return products, nil
}

// parseProducts unpacks a product catalog XML document. Individual productDto nodes
// with missing fields are skipped (skip-on-missing-field policy) - a partial catalog
// is still useful and the per-node errors tend to be abandoned draft entries. A
// document that does not parse at all is an error.
func parseProducts(document []byte) ([]Product, error) {
	catalog := struct {
		Products []struct {
			Num              *string `xml:"num"`
			Name             *string `xml:"name"`
			Id               *string `xml:"id"`
			ProductType      *string `xml:"productType"`
			CookingPlaceType *string `xml:"cookingPlaceType"`
			MainUnit         *string `xml:"mainUnit"`
			ProductCategory  *string `xml:"productCategory"`
		} `xml:"productDto"`
	}{}

	if err := xml.Unmarshal(document, &catalog); err != nil {
		return nil, fmt.Errorf("invalid product catalog XML (%w)", err)
	}

	products := []Product{}
	for _, dto := range catalog.Products {
		fields := []*string{dto.Num, dto.Name, dto.Id, dto.ProductType, dto.CookingPlaceType, dto.MainUnit, dto.ProductCategory}
		if missing(fields...) {
			logrus.Debugf("skipping incomplete productDto (id:%v)", text(dto.Id))
			continue
		}

		products = append(products, Product{
			Num:              *dto.Num,
			Name:             *dto.Name,
			Id:               *dto.Id,
			ProductType:      *dto.ProductType,
			CookingPlaceType: *dto.CookingPlaceType,
			MainUnit:         *dto.MainUnit,
			ProductCategory:  *dto.ProductCategory,
		})
	}

	return products, nil
}

func missing(fields ...*string) bool {
	for _, f := range fields {
		if f == nil || *f == "" {
			return true
		}
	}

	return false
}

func text(v *string) string {
	if v == nil {
		return ""
	}

	return *v
}
