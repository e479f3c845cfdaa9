package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocType_String(t *testing.T) {
	assert.Equal(t, "EFECT_ATM", TypeStatementCashATM.String())
	assert.Equal(t, "EFECT_BANCO", TypeStatementCashBank.String())
	assert.Equal(t, "BULTOS_ATM", TypeStatementBundleATM.String())
	assert.Equal(t, "INVENTARIO_ATM", TypeInventoryATM.String())
	assert.Equal(t, "INVENTARIO_BANCO", TypeInventoryBank.String())
	assert.Equal(t, "INVENTARIO", TypeInventoryPending.String())
	assert.Equal(t, "DESCONOCIDO", TypeUnknown.String())
}

func TestDocType_IsInventory(t *testing.T) {
	assert.True(t, TypeInventoryATM.IsInventory())
	assert.True(t, TypeInventoryBank.IsInventory())
	assert.True(t, TypeInventoryPending.IsInventory())
	assert.False(t, TypeStatementCashATM.IsInventory())
	assert.False(t, TypeUnknown.IsInventory())
}

func TestDocType_Extractable(t *testing.T) {
	assert.True(t, TypeStatementCashATM.Extractable())
	assert.True(t, TypeStatementCashBank.Extractable())
	assert.True(t, TypeStatementBundleATM.Extractable())
	assert.True(t, TypeInventoryATM.Extractable())
	assert.True(t, TypeInventoryBank.Extractable())
	assert.False(t, TypeInventoryPending.Extractable(), "unresolved inventories have no extractor yet")
	assert.False(t, TypeUnknown.Extractable())
}
