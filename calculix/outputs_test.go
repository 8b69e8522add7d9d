package calculix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gocalix/model"
	"github.com/notargets/gocalix/types"
)

func TestContactPrint(t *testing.T) {
	pair := &model.ContactPair{Name: "Contact-1", Interaction: "SI", Master: "M1", Slave: "S1"}
	newPrint := func(frequency int, totals types.TotalsMode, vars model.ContactHistoryVariable) *ContactPrint {
		o, err := model.NewContactHistoryOutput("CP-1", "Contact-1", frequency, vars)
		require.NoError(t, err)
		o.Totals = totals
		p, err := NewContactPrint(o, pair)
		require.NoError(t, err)
		return p
	}
	{ // Every increment, no totals
		p := newPrint(1, types.Totals_No, model.CH_CDIS|model.CH_CSTR)
		assert.Equal(t, "*Contact print, Master=M1, Slave=S1\n", p.KeywordString())
		assert.Equal(t, "CSTR, CDIS\n", p.DataString())
	}
	{ // Frequency comes first and is only written above 1
		p := newPrint(5, types.Totals_No, model.CH_CF)
		assert.Equal(t, "*Contact print, Frequency=5, Master=M1, Slave=S1\n", p.KeywordString())
	}
	{
		p := newPrint(1, types.Totals_Yes, model.CH_CF)
		assert.Equal(t, "*Contact print, Totals=Yes, Master=M1, Slave=S1\n", p.KeywordString())
		p = newPrint(2, types.Totals_Only, model.CH_CF|model.CH_CFN)
		assert.Equal(t, "*Contact print, Frequency=2, Totals=Only, Master=M1, Slave=S1\n", p.KeywordString())
		assert.Equal(t, "CF, CFN\n", p.DataString())
	}
	{ // Master and slave always appear exactly once
		p := newPrint(3, types.Totals_Yes, model.CH_CNUM)
		kw := p.KeywordString()
		assert.Equal(t, 1, strings.Count(kw, "Master="))
		assert.Equal(t, 1, strings.Count(kw, "Slave="))
	}
}

func TestContactPrintErrors(t *testing.T) {
	o, err := model.NewContactHistoryOutput("CP-1", "Contact-1", 1, 0)
	require.NoError(t, err)
	_, err = NewContactPrint(o, &model.ContactPair{Master: "M", Slave: "S"})
	assert.ErrorIs(t, err, ErrUnsupported)

	o.Variables = model.CH_CDIS
	_, err = NewContactPrint(o, nil)
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = NewContactPrint(o, &model.ContactPair{Master: "M"})
	assert.ErrorIs(t, err, model.ErrUnsupportedCombination)
}

func TestOutputsOutsideCatalogueAreEmpty(t *testing.T) {
	nh, err := model.NewNodalHistoryOutput("NH", "N", 1, model.NodalHistoryVariable(1<<9))
	require.NoError(t, err)
	_, err = NewNodePrint(nh)
	assert.ErrorIs(t, err, ErrUnsupported)

	eh, err := model.NewElementHistoryOutput("EH", "E", 1, model.ElementHistoryVariable(1<<15))
	require.NoError(t, err)
	_, err = NewElPrint(eh)
	assert.ErrorIs(t, err, ErrUnsupported)

	ch, err := model.NewContactHistoryOutput("CH", "Contact-1", 1, model.ContactHistoryVariable(1<<12))
	require.NoError(t, err)
	_, err = NewContactPrint(ch, &model.ContactPair{Master: "M", Slave: "S"})
	assert.ErrorIs(t, err, ErrUnsupported)

	nf, err := model.NewNodalFieldOutput("NF", 1, model.NodalFieldVariable(1<<14))
	require.NoError(t, err)
	ef, err := model.NewElementFieldOutput("EF", 1, model.ElementFieldVariable(1<<14))
	require.NoError(t, err)
	cf, err := model.NewContactFieldOutput("CF", 1, model.ContactFieldVariable(1<<14))
	require.NoError(t, err)
	for _, o := range []model.FieldOutput{nf, ef, cf} {
		k, err := NewFieldOutput(o)
		assert.Nil(t, k, o.Label())
		assert.ErrorIs(t, err, ErrUnsupported, o.Label())
	}
}

func TestPrintOutputs(t *testing.T) {
	{
		o, err := model.NewNodalHistoryOutput("NH", "Nfix", 1, model.NH_RF)
		require.NoError(t, err)
		o.Totals = types.Totals_Only
		p, err := NewNodePrint(o)
		require.NoError(t, err)
		assert.Equal(t, "*Node print, Nset=Nfix, Totals=Only\nRF\n", Render(p))
		o.LocalAxes = true
		o.Frequency = 10
		assert.Equal(t, "*Node print, Nset=Nfix, Frequency=10, Totals=Only, Global=No\n", p.KeywordString())
	}
	{
		o, err := model.NewElementHistoryOutput("EH", "Eall", 1, model.EH_S|model.EH_EVOL)
		require.NoError(t, err)
		p, err := NewElPrint(o)
		require.NoError(t, err)
		assert.Equal(t, "*El print, Elset=Eall\nS, EVOL\n", Render(p))
		o.ElementSet = ""
		_, err = NewElPrint(o)
		assert.Error(t, err)
	}
}

func TestFileOutputs(t *testing.T) {
	nf, err := model.NewNodalFieldOutput("NF", 1, model.NF_U|model.NF_RF)
	require.NoError(t, err)
	nf.LastIterations = true
	k, err := NewFieldOutput(nf)
	require.NoError(t, err)
	assert.Equal(t, "*Node file, Last iterations\nRF, U\n", Render(k))

	ef, err := model.NewElementFieldOutput("EF", 2, model.EF_S|model.EF_E)
	require.NoError(t, err)
	ef.ContactElements = true
	ef.LocalAxes = true
	k, err = NewFieldOutput(ef)
	require.NoError(t, err)
	assert.Equal(t, "*El file, Frequency=2, Global=No, Contact elements\nS, E\n", Render(k))

	cf, err := model.NewContactFieldOutput("CF", 1, model.CF_CDIS|model.CF_CSTR)
	require.NoError(t, err)
	k, err = NewFieldOutput(cf)
	require.NoError(t, err)
	assert.Equal(t, "*Contact file\nCDIS, CSTR\n", Render(k))

	cf.Variables = 0
	_, err = NewFieldOutput(cf)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestHistoryOutputResolvesContactPair(t *testing.T) {
	m := model.NewModel("", 0)
	m.ContactPairs = []model.ContactPair{{Name: "Contact-1", Master: "M1", Slave: "S1"}}
	o, err := model.NewContactHistoryOutput("CP", "Contact-1", 1, model.CH_CF)
	require.NoError(t, err)
	k, err := NewHistoryOutput(o, m)
	require.NoError(t, err)
	assert.Equal(t, "*Contact print, Master=M1, Slave=S1\nCF\n", Render(k))

	o.ContactPair = "missing"
	k, err = NewHistoryOutput(o, m)
	assert.Error(t, err)
	assert.Nil(t, k)
}
