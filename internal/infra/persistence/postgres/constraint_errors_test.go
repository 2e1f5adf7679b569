package postgres

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	t.Run("gorm translated errors", func(t *testing.T) {
		assert.True(t, isUniqueConstraintViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
		assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
		assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	})

	t.Run("raw sqlstate", func(t *testing.T) {
		assert.True(t, isUniqueConstraintViolation(fmt.Errorf(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)))
		assert.True(t, isNotNullConstraintViolation(fmt.Errorf(`ERROR: null value in column "station" violates not-null constraint (SQLSTATE 23502)`)))
		assert.True(t, isForeignKeyConstraintViolation(fmt.Errorf("ERROR: insert violates foreign key (SQLSTATE 23503)")))
	})

	t.Run("unrelated errors", func(t *testing.T) {
		err := fmt.Errorf("connection refused")
		assert.False(t, isUniqueConstraintViolation(err))
		assert.False(t, isForeignKeyConstraintViolation(err))
		assert.False(t, isNotNullConstraintViolation(err))
		assert.False(t, isCheckConstraintViolation(err))
	})
}
