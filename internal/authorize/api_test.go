package authorize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafaelq/go-authz/pkg/authz"
)

func TestURLWithQueryParams(t *testing.T) {
	got := urlWithQueryParams("https://example.com/callback?keep=1", []authz.Param{
		{Name: "code", Value: "random_code"},
		{Name: "state", Value: "random_state"},
	})

	assert.Equal(t, "https://example.com/callback?code=random_code&keep=1&state=random_state", got)
}

func TestURLWithFragmentParams(t *testing.T) {
	got := urlWithFragmentParams("https://example.com/callback", []authz.Param{
		{Name: "id_token", Value: "random_id_token"},
		{Name: "state", Value: "random_state"},
	})

	assert.Equal(t, "https://example.com/callback#id_token=random_id_token&state=random_state", got)
}
