package sheetpdf

import (
	"errors"
	"strings"
	"testing"
)

func TestNotice(t *testing.T) {
	seen := map[string]error{}
	for _, kind := range kinds {
		msg := Notice(NewError(opLoad, "", kind, nil))
		if msg == "" {
			t.Errorf("empty notice for %v", kind)
		}
		if prev, ok := seen[msg]; ok {
			t.Errorf("%v and %v share the notice %q", prev, kind, msg)
		}
		seen[msg] = kind
	}

	if got := Notice(NewError(opGenerate, "", ErrEmptyContent, nil)); got != "No document loaded." {
		t.Errorf("empty content notice = %q", got)
	}
	if got := Notice(errors.New("unknown")); got != "Something went wrong." {
		t.Errorf("fallback notice = %q", got)
	}
}

func TestSuccessNotices(t *testing.T) {
	if got := LoadedNotice(Session{Source: "/d/a.xlsx"}); !strings.Contains(got, "/d/a.xlsx") {
		t.Errorf("LoadedNotice = %q", got)
	}
	if got := GeneratedNotice(&Result{Path: "/d/out.pdf"}); !strings.Contains(got, "/d/out.pdf") {
		t.Errorf("GeneratedNotice = %q", got)
	}
}
