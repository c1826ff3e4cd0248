package teacherstore_test

import (
	"testing"

	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/testutil"
)

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateTeacher(ctx, "mr_chips", "Mr. Chips")

	store := teacherstore.New(db)

	ok, err := store.Exists(ctx, "mr_chips")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Error("expected mr_chips to exist")
	}

	ok, err = store.Exists(ctx, "impostor")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Error("expected impostor to be unknown")
	}
}
