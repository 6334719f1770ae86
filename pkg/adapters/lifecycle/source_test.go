package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/brezel/pkg/adapters/lifecycle"
	"github.com/aretw0/brezel/pkg/core"
)

func TestSource(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan core.Event, 2)
	changes <- core.Event{Type: core.EventCreate, Title: "a"}
	changes <- core.Event{Type: core.EventDelete, Title: "b"}
	close(changes)

	src := lifecycle.NewSource(changes)
	require.NoError(t, src.Start(ctx))

	var got []core.Event
	timeout := time.After(3 * time.Second)
	for {
		select {
		case e, ok := <-src.Events():
			if !ok {
				require.Len(t, got, 2)
				assert.Equal(t, "a", got[0].Title)
				assert.Equal(t, core.EventDelete, got[1].Type)
				return
			}
			change, isNote := e.(core.Event)
			require.True(t, isNote)
			got = append(got, change)
		case <-timeout:
			t.Fatal("source did not close")
		}
	}
}
