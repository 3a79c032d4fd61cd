package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsethi/finanalyzer/internal/models"
	"jsethi/finanalyzer/internal/reconcile"
)

func sampleReport() reconcile.Report {
	return reconcile.BuildReport(map[string][]models.MatchResult{
		"sbi_savings": {
			{Score: 110, MatchType: models.MatchExact},
			{Score: 45, MatchType: models.MatchPartial},
		},
	})
}

func TestGenerator_Generate_JSON(t *testing.T) {
	r := sampleReport()

	data, err := NewGenerator().Generate(&r, "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.ReportID, decoded["report_id"])
	assert.Contains(t, decoded, "reconciliation_summary")
	assert.Contains(t, decoded, "overall")
	assert.Contains(t, decoded, "matches")
}

func TestGenerator_Generate_UnsupportedFormat(t *testing.T) {
	r := sampleReport()

	_, err := NewGenerator().Generate(&r, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestGenerator_WriteFile(t *testing.T) {
	r := sampleReport()
	path := filepath.Join(t.TempDir(), "reconciliation_report.json")

	require.NoError(t, NewGenerator().WriteFile(&r, "json", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded reconcile.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.ReportID, decoded.ReportID)
	assert.Equal(t, 2, decoded.Overall.TotalMatches)
	assert.Equal(t, 1, decoded.Overall.ExactMatches)
	assert.Equal(t, 1, decoded.Overall.PartialMatches)
}
