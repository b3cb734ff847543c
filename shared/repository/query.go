package repository

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"sportshub/shared/dto"
)

// column is one selectable field. table is empty for computed columns.
type column struct {
	name  string
	table string
	alias string
}

func (c column) expr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return fmt.Sprintf("%s.%s", c.table, c.name)
	}
}

// joiner is implemented by detail models that select across tables.
type joiner interface {
	GetJoinQuery() string
}

// scanColumns walks db/table/column tags, descending into embedded structs.
// Only columns owned by table are insertable.
func scanColumns(table string, typ reflect.Type) (selectable []column, insertable []string) {
	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			sel, ins := scanColumns(table, field.Type)
			selectable = append(selectable, sel...)
			insertable = append(insertable, ins...)
		}

		name := field.Tag.Get("db")
		if name == "" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertable = append(insertable, name)
		}

		if source := field.Tag.Get("column"); source != "" {
			selectable = append(selectable, column{name: source, table: owner, alias: name})
		} else {
			selectable = append(selectable, column{name: name, table: owner})
		}
	}

	return selectable, insertable
}

func selectList(columns []column, only ...string) string {
	exprs := make([]string, 0, len(columns))

	for _, col := range columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		exprs = append(exprs, col.expr())
	}

	return strings.Join(exprs, ", ")
}

func insertStatement(table string, columns []string) string {
	named := make([]string, len(columns))
	for i, col := range columns {
		named[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), strings.Join(named, ", "))
}

// setClause renders assignments in key order so equal updates produce equal SQL.
func setClause(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for i, key := range keys {
		keys[i] = fmt.Sprintf("%s = :%s", key, key)
	}

	return strings.Join(keys, ", ")
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where + " ", args
}

func paginate(params dto.QueryParams, args map[string]any) string {
	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		return "LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit

		return "LIMIT :limit"
	default:
		return ""
	}
}

// compact joins the non-empty parts of a statement with single spaces.
func compact(parts ...string) string {
	kept := parts[:0]

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, " ")
}
