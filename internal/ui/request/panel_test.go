package request

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/logging"
	"github.com/shhac/burrow/internal/model"
)

func newPanel(t *testing.T) (*RequestPanel, *model.RequestState) {
	t.Helper()
	state := model.NewRequestState()
	p := NewRequestPanel(state, logging.NewNopLogger())
	w := test.NewWindow(p)
	t.Cleanup(w.Close)
	return p, state
}

func TestRequestPanel_Defaults(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newPanel(t)
	d := p.Draft()

	assert.Equal(t, "GET", d.Method)
	assert.Empty(t, d.URL)
	assert.Equal(t, domain.Pairs{{}}, d.Params)
	assert.Equal(t, domain.Pairs{{}}, d.Headers)
	assert.Equal(t, 3, len(p.tabs.Items))
	assert.Equal(t, "Query Params", p.tabs.Items[TabParams].Text)
	assert.Equal(t, "Headers", p.tabs.Items[TabHeaders].Text)
	assert.Equal(t, "JSON", p.tabs.Items[TabBody].Text)
}

func TestRequestPanel_SendCollectsForm(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newPanel(t)

	var got []domain.Draft
	p.SetOnSend(func(d domain.Draft) { got = append(got, d) })

	p.methodSelect.SetSelected("POST")
	test.Type(p.urlEntry, "https://example.com/items")
	p.params.SetPairs(domain.Pairs{{Key: "page", Value: "2"}, {Key: "", Value: "dropped later"}})
	p.headers.SetPairs(domain.Pairs{{Key: "X-Token", Value: "t"}})
	test.Type(p.bodyEditor, `{"a":1}`)

	test.Tap(p.sendBtn)

	require.Len(t, got, 1)
	d := got[0]
	assert.Equal(t, "POST", d.Method)
	assert.Equal(t, "https://example.com/items", d.URL)
	assert.Equal(t, `{"a":1}`, d.Body)
	assert.Equal(t, map[string]string{"page": "2"}, d.Params.Map())
	assert.Equal(t, map[string]string{"X-Token": "t"}, d.Headers.Map())
}

func TestRequestPanel_SendDisabledWhileSending(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state := newPanel(t)
	calls := 0
	p.SetOnSend(func(domain.Draft) { calls++ })

	_ = state.Sending.Set(true)
	assert.True(t, p.sendBtn.Disabled())
	p.TriggerSend()
	assert.Equal(t, 0, calls)

	_ = state.Sending.Set(false)
	assert.False(t, p.sendBtn.Disabled())
	p.TriggerSend()
	assert.Equal(t, 1, calls)
}

func TestRequestPanel_LoadDraft(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newPanel(t)
	p.LoadDraft(domain.Draft{
		Method:  "DELETE",
		URL:     "https://example.com/items/1",
		Params:  domain.Pairs{{Key: "force", Value: "true"}},
		Headers: domain.Pairs{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}},
		Body:    "null",
	})

	assert.Equal(t, "DELETE", p.methodSelect.Selected)
	assert.Equal(t, "https://example.com/items/1", p.urlEntry.Text)
	assert.Equal(t, 1, p.params.Len())
	assert.Equal(t, 2, p.headers.Len())
	assert.Equal(t, "null", p.bodyEditor.Text)

	p.LoadDraft(domain.Draft{})
	assert.Equal(t, "GET", p.methodSelect.Selected)
	assert.Equal(t, 1, p.params.Len(), "an empty draft leaves one blank row")
}

func TestRequestPanel_FormatBody(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state := newPanel(t)

	_ = state.Body.Set(`{"a":[1,2]}`)
	p.FormatBody()
	body, _ := state.Body.Get()
	assert.Equal(t, "{\n  \"a\": [1, 2]\n}\n", body)
	assert.Empty(t, p.bodyHint.Text)

	_ = state.Body.Set(`{"a":`)
	p.FormatBody()
	body, _ = state.Body.Get()
	assert.Equal(t, `{"a":`, body)
	assert.Equal(t, "JSON data is malformed", p.bodyHint.Text)
}
