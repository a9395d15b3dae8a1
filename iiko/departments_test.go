package iiko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDepartments(t *testing.T) {
	document := `<corporateItemDtoes>` +
		`<corporateItemDto>` +
		`<id>root</id>` +
		`<code></code>` +
		`<name>МЛ Холдинг</name>` +
		`<type>CORPORATION</type>` +
		`</corporateItemDto>` +
		`<corporateItemDto>` +
		`<id>d-100</id>` +
		`<parentId>root</parentId>` +
		`<code>100</code>` +
		`<name>МЛ МСК Центральный</name>` +
		`<type>DEPARTMENT</type>` +
		`</corporateItemDto>` +
		`</corporateItemDtoes>`

	departments, err := parseDepartments([]byte(document))
	assert.NoError(t, err)

	expected := []Department{
		{Id: "root", ParentId: "", Code: "", Name: "МЛ Холдинг", Type: "CORPORATION"},
		{Id: "d-100", ParentId: "root", Code: "100", Name: "МЛ МСК Центральный", Type: "DEPARTMENT"},
	}

	assert.Equal(t, expected, departments)
	assert.Equal(t, []string{"d-100", "root", "100", "МЛ МСК Центральный", "DEPARTMENT"}, departments[1].Row())
}

func TestParseDepartmentsSkipsIncompleteNodes(t *testing.T) {
	document := `<corporateItemDtoes>` +
		`<corporateItemDto>` +
		`<id>d-100</id>` +
		`<code>100</code>` +
		`<type>DEPARTMENT</type>` +
		`</corporateItemDto>` +
		`<corporateItemDto>` +
		`<id>d-200</id>` +
		`<code>200</code>` +
		`<name>МЛ МСК Северный</name>` +
		`<type>DEPARTMENT</type>` +
		`</corporateItemDto>` +
		`</corporateItemDtoes>`

	departments, err := parseDepartments([]byte(document))
	assert.NoError(t, err)
	assert.Len(t, departments, 1)
	assert.Equal(t, "d-200", departments[0].Id)
}

func TestParseDepartmentsInvalidXML(t *testing.T) {
	_, err := parseDepartments([]byte(`not XML at all`))
	assert.Error(t, err)
}

func TestActiveDepartments(t *testing.T) {
	departments := []Department{
		{Id: "1", Code: "100", Name: "МЛ МСК Центральный", Type: "DEPARTMENT"},
		{Id: "2", Code: "200", Name: "МЛ МСК Северный (Закрыто)", Type: "DEPARTMENT"},
		{Id: "3", Code: "300", Name: "МЛ МСК Южный (закрыта)", Type: "DEPARTMENT"},
		{Id: "4", Code: "400", Name: "МЛ СПБ Невский", Type: "DEPARTMENT"},
	}

	active := ActiveDepartments(departments, "МЛ МСК")

	assert.Len(t, active, 1)
	assert.Equal(t, "1", active[0].Id)
}

func TestActiveDepartmentsWithoutMatch(t *testing.T) {
	departments := []Department{
		{Id: "1", Code: "100", Name: "МЛ МСК Центральный", Type: "DEPARTMENT"},
		{Id: "2", Code: "200", Name: "МЛ МСК Северный (закрыто)", Type: "DEPARTMENT"},
		{Id: "4", Code: "400", Name: "МЛ СПБ Невский", Type: "DEPARTMENT"},
	}

	active := ActiveDepartments(departments, "")

	assert.Len(t, active, 2)
	assert.Equal(t, "1", active[0].Id)
	assert.Equal(t, "4", active[1].Id)
}

func TestDepartmentCodes(t *testing.T) {
	departments := []Department{
		{Id: "root", Name: "МЛ Холдинг", Type: "CORPORATION"},
		{Id: "1", Code: "100", Name: "МЛ МСК Центральный", Type: "DEPARTMENT"},
		{Id: "2", Code: "200", Name: "МЛ МСК Северный", Type: "DEPARTMENT"},
	}

	assert.Equal(t, []string{"100", "200"}, DepartmentCodes(departments))
}
