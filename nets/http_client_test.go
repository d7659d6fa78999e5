package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/duet/configs"
	"github.com/reusee/duet/modes"
)

func TestHTTPClient(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	).Call(func(
		client HTTPClient,
	) {
		if client == nil {
			t.Fatal()
		}
		if client.Transport == nil {
			t.Fatal()
		}
	})
}
