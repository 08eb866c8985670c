package fleet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalgo.org/fleetsum/models"
)

func TestAggregatorClassification(t *testing.T) {
	a := NewAggregator()

	// One partially filled, one empty, one full host.
	require.NoError(t, a.ProcessLine("0,M1,2,0,1", 1))
	require.NoError(t, a.ProcessLine("5,M2,3,0,0,0", 2))
	require.NoError(t, a.ProcessLine("7,M1,2,1,1", 3))

	summary := a.Summary()
	assert.Equal(t, 3, summary.TotalHosts)

	m1 := summary.ByType(models.InstanceM1)
	require.NotNil(t, m1)
	assert.Equal(t, 2, m1.Hosts)
	assert.Equal(t, 0, m1.EmptyHosts)
	assert.Equal(t, 1, m1.FullHosts)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, m1.EmptySlotHistogram)
	assert.Equal(t, 1, m1.MostFilledHosts)
	assert.Equal(t, 1, m1.MostFilledEmptySlots)

	m2 := summary.ByType(models.InstanceM2)
	require.NotNil(t, m2)
	assert.Equal(t, 1, m2.Hosts)
	assert.Equal(t, 1, m2.EmptyHosts)
	assert.Equal(t, 0, m2.FullHosts)
	assert.Equal(t, map[int]int{3: 1}, m2.EmptySlotHistogram)

	m3 := summary.ByType(models.InstanceM3)
	require.NotNil(t, m3)
	assert.Equal(t, 0, m3.Hosts)
	assert.Equal(t, 0, m3.MostFilledHosts)
	assert.Equal(t, 0, m3.MostFilledEmptySlots)
}

func TestAggregatorSingleSlotHosts(t *testing.T) {
	a := NewAggregator()
	require.NoError(t, a.ProcessLine("1,M1,1,0", 1))
	require.NoError(t, a.ProcessLine("2,M1,1,1", 2))

	m1 := a.Summary().ByType(models.InstanceM1)
	require.NotNil(t, m1)

	// A one-slot host is either empty or full, never both.
	assert.Equal(t, 1, m1.EmptyHosts)
	assert.Equal(t, 1, m1.FullHosts)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, m1.EmptySlotHistogram)
}

func TestAggregatorDuplicateHostID(t *testing.T) {
	a := NewAggregator()
	require.NoError(t, a.ProcessLine("40,M1,2,0,1", 1))
	require.NoError(t, a.ProcessLine("41,M2,1,1", 2))

	// Same ID on a different instance type with different slots is still a
	// duplicate, reported at the second occurrence.
	err := a.ProcessLine("40,M3,2,1,1", 3)
	require.Error(t, err)
	assert.Equal(t, "Line 3: Host ID '40' specified more than once.", err.Error())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, RuleDuplicateHost, verr.Rule)
	assert.Equal(t, 3, verr.Line)
}

func TestAggregatorMalformedDuplicateReportsParseError(t *testing.T) {
	a := NewAggregator()
	require.NoError(t, a.ProcessLine("40,M1,2,0,1", 1))

	// Parse failures win over duplicate detection.
	err := a.ProcessLine("40,M1,2,0,9", 2)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, RuleSlotRange, verr.Rule)
}

func TestAggregatorProcessStopsAtFirstError(t *testing.T) {
	a := NewAggregator()
	err := a.Process([]string{
		"0,M1,2,0,1",
		"bad line",
		"1,M1,2,0,x",
	})
	require.Error(t, err)

	// The second line fails first; the third is never reached.
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Line)
	assert.Equal(t, RuleFieldCount, verr.Rule)
}

func TestAggregatorReadFrom(t *testing.T) {
	input := "0,M1,2,0,1\r\n5,M2,3,0,0,0\n7,M1,2,1,1\n"
	a := NewAggregator()
	require.NoError(t, a.ReadFrom(strings.NewReader(input)))

	summary := a.Summary()
	assert.Equal(t, 3, summary.TotalHosts)
	assert.Equal(t, 2, summary.ByType(models.InstanceM1).Hosts)
	assert.Equal(t, 1, summary.ByType(models.InstanceM2).Hosts)
}

func TestAggregatorReadFromEmptyLine(t *testing.T) {
	input := "50,M1,2,0,1\n\n51,M2,1,0\n"
	a := NewAggregator()

	err := a.ReadFrom(strings.NewReader(input))
	require.Error(t, err)
	assert.Equal(t, "Line 2: The line does not contain enough fields.", err.Error())
}

func TestAggregatorEmptyInput(t *testing.T) {
	a := NewAggregator()
	require.NoError(t, a.ReadFrom(strings.NewReader("")))

	summary := a.Summary()
	assert.Equal(t, 0, summary.TotalHosts)
	require.Len(t, summary.Types, len(models.InstanceTypes))
	for _, ts := range summary.Types {
		assert.Equal(t, 0, ts.Hosts)
		assert.Equal(t, 0, ts.EmptyHosts)
		assert.Equal(t, 0, ts.FullHosts)
		assert.Equal(t, 0, ts.MostFilledHosts)
		assert.Equal(t, 0, ts.MostFilledEmptySlots)
	}
}

func TestAggregatorSummaryOrder(t *testing.T) {
	a := NewAggregator()
	require.NoError(t, a.ProcessLine("1,M3,1,0", 1))
	require.NoError(t, a.ProcessLine("2,M1,1,0", 2))

	summary := a.Summary()
	require.Len(t, summary.Types, 3)

	// Declared order, not input order.
	assert.Equal(t, models.InstanceM1, summary.Types[0].Type)
	assert.Equal(t, models.InstanceM2, summary.Types[1].Type)
	assert.Equal(t, models.InstanceM3, summary.Types[2].Type)
}

func TestAggregatorSummaryIdempotent(t *testing.T) {
	a := NewAggregator()
	require.NoError(t, a.Process([]string{"0,M1,2,0,1", "1,M2,3,1,0,0"}))

	first := a.Summary()
	second := a.Summary()
	assert.Equal(t, first, second)

	// Mutating a returned histogram must not leak into the aggregate.
	first.Types[0].EmptySlotHistogram[99] = 1
	third := a.Summary()
	assert.Equal(t, second, third)
}
