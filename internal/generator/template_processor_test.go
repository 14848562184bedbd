package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vo-scaffolding/internal/models"
)

func orderItemEntity() models.Entity {
	return models.Entity{
		Name:  "TOrderItemVO",
		Table: "order_item",
		Kind:  models.KindTable,
		Columns: []models.Column{
			{Name: "id", ColumnName: "id", JavaType: "java.lang.Integer", JavaTypeShort: "Integer", Import: "java.lang.Integer"},
			{Name: "createdAt", ColumnName: "created_at", JavaType: "java.util.Date", JavaTypeShort: "Date", Import: "java.util.Date"},
			{Name: "note", ColumnName: "note", JavaType: "java.lang.Character[]", JavaTypeShort: "Character[]", Import: "java.lang.Character"},
		},
	}
}

const orderItemSource = `package com.example.vo;

import java.lang.Character;
import java.lang.Integer;
import java.util.Date;

public class TOrderItemVO {
	private Integer id;
	private Date createdAt;
	private Character[] note;

	public Integer getId() {
		return id;
	}

	public void setId(Integer id) {
		this.id = id;
	}

	public Date getCreatedAt() {
		return createdAt;
	}

	public void setCreatedAt(Date createdAt) {
		this.createdAt = createdAt;
	}

	public Character[] getNote() {
		return note;
	}

	public void setNote(Character[] note) {
		this.note = note;
	}
}
`

func TestRenderOrderItem(t *testing.T) {
	tp, err := NewTemplateProcessor("com.example.vo")
	require.NoError(t, err)

	source, err := tp.Render(orderItemEntity())
	require.NoError(t, err)
	assert.Equal(t, orderItemSource, source)
	assert.Equal(t, "TOrderItemVO.java", FileName(orderItemEntity()))
}

func TestRenderIsDeterministic(t *testing.T) {
	tp, err := NewTemplateProcessor("com.example.vo")
	require.NoError(t, err)

	first, err := tp.Render(orderItemEntity())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := tp.Render(orderItemEntity())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRenderAccessorsAndImports(t *testing.T) {
	entity := models.Entity{
		Name: "Audit",
		Columns: []models.Column{
			{Name: "createdAt", JavaTypeShort: "Date", Import: "java.util.Date"},
			{Name: "updatedAt", JavaTypeShort: "Date", Import: "java.util.Date"},
			{Name: "payload", JavaTypeShort: "byte[]"},
			{Name: "amount", JavaTypeShort: "BigDecimal", Import: "java.math.BigDecimal"},
		},
	}

	tp, err := NewTemplateProcessor("")
	require.NoError(t, err)

	source, err := tp.Render(entity)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(source, "import java.math.BigDecimal;\nimport java.util.Date;\n\npublic class Audit {\n"))
	assert.Equal(t, 1, strings.Count(source, "import java.util.Date;"))
	assert.Equal(t, 2, strings.Count(source, "import "))
	assert.Equal(t, len(entity.Columns), strings.Count(source, "\tprivate "))
	assert.Equal(t, len(entity.Columns), strings.Count(source, "\tpublic void set"))
	assert.Equal(t, len(entity.Columns), strings.Count(source, " get"))
	assert.Contains(t, source, "\tprivate byte[] payload;\n")
	assert.Contains(t, source, "\tpublic void setPayload(byte[] payload) {\n")
	assert.NotContains(t, source, "package ")
}

func TestRenderZeroColumns(t *testing.T) {
	tp, err := NewTemplateProcessor("com.example.vo")
	require.NoError(t, err)

	source, err := tp.Render(models.Entity{Name: "TEmptyVO"})
	require.NoError(t, err)
	assert.Equal(t, "package com.example.vo;\n\npublic class TEmptyVO {\n}\n", source)
}

func TestProcessUnknownTemplate(t *testing.T) {
	tp, err := NewTemplateProcessor("")
	require.NoError(t, err)

	_, err = tp.Process("missing.tpl", nil)
	assert.Error(t, err)
}
