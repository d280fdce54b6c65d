package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoDirName(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://github.com/acme/widgets.git", "widgets"},
		{"https://github.com/acme/widgets", "widgets"},
		{"https://github.com/acme/widgets/", "widgets"},
		{"git@github.com:acme/widgets.git", "widgets"},
		{"widgets", "widgets"},
		{"", "repo"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, repoDirName(tc.url), "url %q", tc.url)
	}
}
