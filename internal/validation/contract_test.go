package validation

import (
	"testing"

	"github.com/google/uuid"
)

func TestContractNotEmpty(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantNotes int
	}{
		{"non-empty value passes", "hello", 0},
		{"empty value fails", "", 1},
		{"whitespace is not empty", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := NewContract().NotEmpty(tt.value, "Name").Notifications()
			if len(notes) != tt.wantNotes {
				t.Errorf("got %d notifications, want %d", len(notes), tt.wantNotes)
			}
		})
	}
}

func TestContractMinLen(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		min       int
		wantNotes int
	}{
		{"long enough", "abc", 3, 0},
		{"longer than minimum", "abcd", 3, 0},
		{"too short", "ab", 3, 1},
		{"empty deferred to NotEmpty", "", 3, 0},
		{"multibyte runes counted as one", "àéî", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := NewContract().MinLen(tt.value, tt.min, "Name").Notifications()
			if len(notes) != tt.wantNotes {
				t.Errorf("got %d notifications, want %d", len(notes), tt.wantNotes)
			}
		})
	}
}

func TestContractNotNilUUID(t *testing.T) {
	t.Run("zero uuid fails", func(t *testing.T) {
		notes := NewContract().NotNilUUID(uuid.Nil, "CategoryId").Notifications()
		if len(notes) != 1 {
			t.Fatalf("got %d notifications, want 1", len(notes))
		}
		if notes[0].Field != "CategoryId" {
			t.Errorf("Field = %q, want %q", notes[0].Field, "CategoryId")
		}
	})

	t.Run("real uuid passes", func(t *testing.T) {
		notes := NewContract().NotNilUUID(uuid.New(), "CategoryId").Notifications()
		if !notes.Valid() {
			t.Errorf("unexpected notifications: %+v", notes)
		}
	})
}

func TestContractGreaterOrEqual(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		min       int
		wantNotes int
	}{
		{"equal passes", 3, 3, 0},
		{"greater passes", 10, 3, 0},
		{"less fails", 2, 3, 1},
		{"negative fails", -1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := NewContract().GreaterOrEqual(tt.value, tt.min, "Rows").Notifications()
			if len(notes) != tt.wantNotes {
				t.Errorf("got %d notifications, want %d", len(notes), tt.wantNotes)
			}
		})
	}
}

func TestContractChainPreservesOrder(t *testing.T) {
	notes := NewContract().
		NotEmpty("", "Name").
		MinLen("ab", 3, "Description").
		NotEmpty("", "CreatedBy").
		Notifications()

	if len(notes) != 3 {
		t.Fatalf("got %d notifications, want 3", len(notes))
	}

	wantFields := []string{"Name", "Description", "CreatedBy"}
	for i, want := range wantFields {
		if notes[i].Field != want {
			t.Errorf("notes[%d].Field = %q, want %q", i, notes[i].Field, want)
		}
	}
}

func TestContractCustomMessage(t *testing.T) {
	notes := NewContract().NotEmpty("", "Name", "Nome é obrigatório").Notifications()
	if len(notes) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notes))
	}
	if notes[0].Message != "Nome é obrigatório" {
		t.Errorf("Message = %q, want custom message", notes[0].Message)
	}
}

func TestContractDefaultMessage(t *testing.T) {
	notes := NewContract().MinLen("ab", 3, "Name").Notifications()
	if len(notes) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notes))
	}
	if notes[0].Message != "Name must be at least 3 characters" {
		t.Errorf("Message = %q, want default message", notes[0].Message)
	}
}
