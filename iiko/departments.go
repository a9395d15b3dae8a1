package iiko

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/iikotools/iiko-app-sheets/table"
)

// Department is a node from the iiko corporate hierarchy. ParentId links to another
// department's Id, forming a tree rooted at the corporation node. Code carries the
// SAP ID used by the OLAP Department.Code dimension and may be blank for grouping
// nodes.
type Department struct {
	Id       string
	ParentId string
	Code     string
	Name     string
	Type     string
}

// DepartmentHeader is the fixed column schema for department rows, in row order.
var DepartmentHeader = []string{"id", "parentId", "code", "name", "type"}

// Row returns the department as a record matching DepartmentHeader.
func (d Department) Row() []string {
	return []string{d.Id, d.ParentId, d.Code, d.Name, d.Type}
}

// DepartmentTable tabulates a department list against the DepartmentHeader schema,
// in document order.
func DepartmentTable(departments []Department) *table.Table {
	records := make([][]string, len(departments))
	for i, d := range departments {
		records[i] = d.Row()
	}

	return &table.Table{
		Header:  DepartmentHeader,
		Records: records,
	}
}

// Departments fetches the corporate hierarchy as a flat list in document order. The
// endpoint replies with an XML document of repeated corporateItemDto elements.
func (c *Client) Departments(ctx context.Context, token string) ([]Department, error) {
	logrus.Debugf("fetching departments from iiko")

	body, err := c.get(ctx, "/corporation/departments", url.Values{
		"key": []string{token},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to fetch departments (%w)", err)
	}

	departments, err := parseDepartments(body)
	if err != nil {
		return nil, err
	}

	logrus.Infof("fetched %v departments", len(departments))

	return departments, nil
}

// parseDepartments unpacks a corporate hierarchy XML document, skipping nodes with a
// missing id, name or type (skip-on-missing-field policy). parentId and code are
// legitimately blank for root and grouping nodes and are not required.
func parseDepartments(document []byte) ([]Department, error) {
	hierarchy := struct {
		Items []struct {
			Id       *string `xml:"id"`
			ParentId string  `xml:"parentId"`
			Code     string  `xml:"code"`
			Name     *string `xml:"name"`
			Type     *string `xml:"type"`
		} `xml:"corporateItemDto"`
	}{}

	if err := xml.Unmarshal(document, &hierarchy); err != nil {
		return nil, fmt.Errorf("invalid departments XML (%w)", err)
	}

	departments := []Department{}
	for _, dto := range hierarchy.Items {
		if missing(dto.Id, dto.Name, dto.Type) {
			logrus.Debugf("skipping incomplete corporateItemDto (id:%v)", text(dto.Id))
			continue
		}

		departments = append(departments, Department{
			Id:       *dto.Id,
			ParentId: dto.ParentId,
			Code:     dto.Code,
			Name:     *dto.Name,
			Type:     *dto.Type,
		})
	}

	return departments, nil
}

// ActiveDepartments filters a department list down to the operating restaurants: the
// name contains the configured match string (all departments if blank) and does not
// carry a '(закрыто)'/'(закрыта)' closed marker.
func ActiveDepartments(departments []Department, match string) []Department {
	active := []Department{}
	for _, d := range departments {
		name := strings.ToLower(d.Name)

		if match != "" && !strings.Contains(d.Name, match) {
			continue
		}

		if strings.Contains(name, "(закрыто)") || strings.Contains(name, "(закрыта)") {
			continue
		}

		active = append(active, d)
	}

	return active
}

// DepartmentCodes returns the non-blank codes (SAP IDs) for a department list, for
// use with the report Department.Code filter.
func DepartmentCodes(departments []Department) []string {
	codes := []string{}
	for _, d := range departments {
		if d.Code != "" {
			codes = append(codes, d.Code)
		}
	}

	return codes
}
