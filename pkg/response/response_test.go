package response

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOKT(t *testing.T) {
	r := OKT(map[string]string{"k": "v"})
	require.Equal(t, APIResponseCodeOK, r.Code)
	require.Equal(t, "ok", r.Message)
	require.Equal(t, "v", r.Data["k"])
}

func TestErrorT_EveryCodeHasMessage(t *testing.T) {
	for code := range codeToMsg {
		r := ErrorT[any](code, nil)
		require.NotEmpty(t, r.Message, "code %d", code)
	}
}
