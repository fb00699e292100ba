package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAliasTable(t *testing.T) {
	table := NewAliasTable(map[string][]string{
		"CTS": {"Cognizant", "Cognizant Technology Solutions", "cognizant"},
		"":    {"ignored"},
		"IBM": {"", "ibm"},
	})

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"cognizant", "cognizanttechnologysolutions"}, table.Targets("cts"))
	assert.Equal(t, []string{"cognizant", "cognizanttechnologysolutions"}, table.Targets("C.T.S."))
	assert.Nil(t, table.Targets("ibm"))
	assert.Nil(t, table.Targets("unknown"))
}

func TestAliasTable_Related(t *testing.T) {
	table := NewAliasTable(map[string][]string{
		"cts": {"cognizant", "cognizanttechnologysolutions"},
		"tcs": {"tataconsultancyservices"},
	})

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"key to target", "cts", "cognizant", true},
		{"target to key", "cognizant", "cts", true},
		{"siblings in one group", "cognizant", "cognizanttechnologysolutions", true},
		{"different groups", "cognizant", "tataconsultancyservices", false},
		{"two keys", "cts", "tcs", false},
		{"unknown names", "acme", "globex", false},
		{"empty input", "", "cts", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Related(tt.a, tt.b))
			assert.Equal(t, tt.want, table.Related(tt.b, tt.a), "Related must be symmetric")
		})
	}
}

func TestAliasTable_ZeroValue(t *testing.T) {
	var table AliasTable

	assert.Equal(t, 0, table.Len())
	assert.False(t, table.Related("cts", "cognizant"))
	assert.Nil(t, table.Targets("cts"))
}
