//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
)

func withTx(t *testing.T) (*pg.Tx, context.Context, *Client) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	client := New(tx)
	return tx, ctx, client
}

func slugsOf[M any](list []M, slug func(M) string) []string {
	res := make([]string, 0, len(list))
	for _, m := range list {
		res = append(res, slug(m))
	}
	return res
}
