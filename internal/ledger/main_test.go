package ledger

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/solforge/fairmint/internal/store/pgtest"
)

var testDB *pgtest.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	testDB, err = pgtest.Start(ctx)
	if err != nil {
		fmt.Printf("Failed to start test database: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	testDB.Close(ctx)
	os.Exit(code)
}
