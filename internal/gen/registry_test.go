// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acalejos/scout/internal/spec"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry("")

	require.NoError(t, r.Register(&Definition{Name: "Product"}))

	def, ok := r.Lookup("Product")
	require.True(t, ok)
	assert.Equal(t, "Product", def.Name)

	_, ok = r.Lookup("Missing")
	assert.False(t, ok)
}

func TestRegistry_Collision(t *testing.T) {
	r := NewRegistry("")
	require.NoError(t, r.Register(&Definition{Name: "Product"}))

	err := r.Register(&Definition{Name: "Product"})
	var cerr *spec.NameCollisionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Product", cerr.Name)

	// The original registration survives.
	_, ok := r.Lookup("Product")
	assert.True(t, ok)
}

func TestRegistry_Prefix(t *testing.T) {
	a := NewRegistry("SiteA")
	b := NewRegistry("SiteB")

	defA := &Definition{Name: "Product"}
	defB := &Definition{Name: "Product"}
	require.NoError(t, a.Register(defA))
	require.NoError(t, b.Register(defB))

	assert.Equal(t, []string{"SiteAProduct"}, a.Names())
	assert.Equal(t, []string{"SiteBProduct"}, b.Names())

	// Registration renames the definition, so rendering it afterwards
	// emits the qualified type name.
	assert.Equal(t, "SiteAProduct", defA.Name)
	assert.Equal(t, "SiteBProduct", defB.Name)

	_, ok := a.Lookup("Product")
	assert.True(t, ok)
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry("")
	require.NoError(t, r.Register(&Definition{Name: "Zebra"}))
	require.NoError(t, r.Register(&Definition{Name: "Apple"}))
	require.NoError(t, r.Register(&Definition{Name: "Mango"}))

	assert.Equal(t, []string{"Apple", "Mango", "Zebra"}, r.Names())
}
