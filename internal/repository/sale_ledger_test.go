package repository_test

import (
	"context"
	"testing"

	"sobanhang/internal/model"
	"sobanhang/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerAppend_MostRecentFirst(t *testing.T) {
	w := &stubWriter{}
	ledger := repository.NewSaleLedger(w, nil)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, ledger.Append(ctx, model.Sale{ID: id}))
	}

	all := ledger.All()
	require.Len(t, all, 3)
	assert.Equal(t, "s3", all[0].ID)
	assert.Equal(t, "s1", all[2].ID)
	assert.Equal(t, 3, ledger.Len())
	require.Len(t, w.sales, 3)
	assert.Equal(t, "s3", w.sales[2][0].ID)

	s, ok := ledger.FindByID("s2")
	require.True(t, ok)
	assert.Equal(t, "s2", s.ID)
	_, ok = ledger.FindByID("nope")
	assert.False(t, ok)
}

func TestLedgerAppend_WriteFailure(t *testing.T) {
	ledger := repository.NewSaleLedger(&stubWriter{fail: true}, []model.Sale{{ID: "old"}})

	err := ledger.Append(context.Background(), model.Sale{ID: "new"})
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 1, ledger.Len())
}
