package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/kiroku/pkg/model"
)

func TestDraftValidate(t *testing.T) {
	testCases := []struct {
		name    string
		draft   model.NoteDraft
		wantErr bool
	}{
		{
			name:  "valid text note",
			draft: model.NoteDraft{Title: "Groceries", Content: "Buy milk"},
		},
		{
			name:  "valid without title",
			draft: model.NoteDraft{Content: "Buy milk"},
		},
		{
			name:    "empty content",
			draft:   model.NoteDraft{Title: "Groceries"},
			wantErr: true,
		},
		{
			name:    "whitespace only content",
			draft:   model.NoteDraft{Content: "   \t\n  "},
			wantErr: true,
		},
		{
			name:  "voice type",
			draft: model.NoteDraft{Content: "transcript", Type: model.NoteTypeVoice, AudioRef: "file:///rec.wav"},
		},
		{
			name:    "unknown type",
			draft:   model.NoteDraft{Content: "hello", Type: model.NoteType("video")},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			if tc.wantErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, model.ErrInvalidNote))
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestPatchValidate(t *testing.T) {
	blank := "  "
	content := "updated"

	gt.NoError(t, (&model.NotePatch{}).Validate())
	gt.NoError(t, (&model.NotePatch{Content: &content}).Validate())

	err := (&model.NotePatch{Content: &blank}).Validate()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrInvalidNote))
}

func TestNewNoteID(t *testing.T) {
	id1 := model.NewNoteID()
	id2 := model.NewNoteID()

	gt.NotEqual(t, id1, model.NoteID(""))
	gt.NotEqual(t, id1, id2)
}

func TestNoteMatches(t *testing.T) {
	n := &model.Note{
		Title:   "Shopping List",
		Content: "Buy milk and eggs",
		Tags:    []string{"Groceries", "Errands"},
	}

	testCases := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"shopping", true},
		{"MILK", true},
		{"grocer", true},
		{"errands", true},
		{"quantum", false},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			gt.Equal(t, n.Matches(tc.query), tc.want)
		})
	}
}
