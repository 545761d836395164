package comparer

import (
	"healthgraph/src/domain/entities"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func IgnoreFieldsFor[T any](fields ...string) cmp.Option {
	var t T
	return cmpopts.IgnoreFields(t, fields...)
}

// IgnoreStoreTimestamps drops the timestamps the store sets on write.
func IgnoreStoreTimestamps() cmp.Option {
	return IgnoreFieldsFor[entities.BaseEntity]("CreatedAt", "UpdatedAt")
}
