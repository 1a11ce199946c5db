package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "users_email_key"`), ""))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: cart_items.cart_id, cart_items.product_id"), ""))
	assert.False(t, IsUniqueViolation(errors.New("connection refused"), ""))
	assert.False(t, IsUniqueViolation(nil, ""))
}

func TestIsUniqueViolationWithConstraintName(t *testing.T) {
	err := errors.New(`duplicate key value violates unique constraint "cart_items_cart_product_key"`)
	assert.True(t, IsUniqueViolation(err, "cart_items_cart_product_key"))
	assert.False(t, IsUniqueViolation(err, "wishlist_items_wishlist_product_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(errors.New(`insert or update on table "products" violates foreign key constraint "products_category_id_fkey"`)))
	assert.True(t, IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, IsForeignKeyViolation(errors.New("connection refused")))
	assert.False(t, IsForeignKeyViolation(nil))
}
