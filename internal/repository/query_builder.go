package repository

import "github.com/doug-martin/goqu/v9"

// QueryBuilder collects optional list-endpoint filters and renders them as
// goqu conditions, mapping API field names to column aliases where needed.
type QueryBuilder interface {
	AddCondition(key string, value interface{})
	HasConditions() bool
	BuildConditions(aliases map[string]string) goqu.Ex
}
