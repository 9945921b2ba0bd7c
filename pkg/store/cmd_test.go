package store_test

import (
	"testing"

	"src.lined.sh/pkg/store"
	"src.lined.sh/pkg/store/storetest"
)

func TestCmd(t *testing.T) {
	storetest.TestCmd(t, store.MustTempStore(t))
}
