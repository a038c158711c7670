package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/bms-pro/internal/application/dto"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	cases := []struct {
		name       string
		in         dto.PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"vacío recibe defaults", dto.PageRequest{}, 20, 0},
		{"límite negativo recibe default", dto.PageRequest{Limit: -5, Offset: 10}, 20, 10},
		{"límite excesivo se acota a 100", dto.PageRequest{Limit: 5000}, 100, 0},
		{"offset negativo se normaliza", dto.PageRequest{Limit: 30, Offset: -1}, 30, 0},
		{"valores válidos pasan intactos", dto.PageRequest{Limit: 50, Offset: 100}, 50, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.DefaultPage()
			assert.Equal(t, tc.wantLimit, tc.in.Limit)
			assert.Equal(t, tc.wantOffset, tc.in.Offset)
		})
	}
}
