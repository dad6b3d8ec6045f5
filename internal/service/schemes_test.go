package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishikendra/agri-data-service/internal/domain"
)

func TestSchemeService_List(t *testing.T) {
	svc := NewSchemeService()

	t.Run("default lists everything sorted by name", func(t *testing.T) {
		got := svc.List(domain.SchemeFilter{}, "")
		require.NotEmpty(t, got)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].SchemeName, got[i].SchemeName)
		}
	})

	t.Run("state filter keeps all-India schemes", func(t *testing.T) {
		got := svc.List(domain.SchemeFilter{State: "Punjab"}, "")
		require.NotEmpty(t, got)
		var sawCentral, sawPunjab bool
		for _, s := range got {
			switch s.State {
			case domain.StateAllIndia:
				sawCentral = true
			case "Punjab":
				sawPunjab = true
			default:
				t.Errorf("unexpected state %q in Punjab listing", s.State)
			}
		}
		assert.True(t, sawCentral)
		assert.True(t, sawPunjab)
	})

	t.Run("keyword search", func(t *testing.T) {
		got := svc.List(domain.SchemeFilter{Keyword: "insurance"}, "")
		require.NotEmpty(t, got)
		ids := make([]string, 0, len(got))
		for _, s := range got {
			ids = append(ids, s.ID)
		}
		assert.Contains(t, ids, "pmfby-001")
	})
}

func TestSchemeService_ByID(t *testing.T) {
	svc := NewSchemeService()

	s, ok := svc.ByID("pm-kisan-001")
	require.True(t, ok)
	assert.Equal(t, domain.GovernmentCentral, s.GovernmentType)

	_, ok = svc.ByID("nope")
	assert.False(t, ok)
}

func TestSchemeService_StatesWithSchemes(t *testing.T) {
	svc := NewSchemeService()

	states := svc.StatesWithSchemes()
	require.NotEmpty(t, states)
	assert.Equal(t, domain.StateAllIndia, states[0])
	rest := states[1:]
	for i := 1; i < len(rest); i++ {
		assert.Less(t, rest[i-1], rest[i], "states after All India are sorted and distinct")
	}
	assert.Contains(t, rest, "Punjab")
	assert.Contains(t, rest, "Tamil Nadu")
}
