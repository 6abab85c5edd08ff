package appointment

import "testing"

func TestParseHM(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"14:45", 885, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:00", 0, true},
		{"09h00", 0, true},
		{"", 0, true},
	}

	for _, tt := range cases {
		got, err := ParseHM(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseHM(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseHM(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatHM(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{885, "14:45"},
		{1439, "23:59"},
	}

	for _, tt := range cases {
		if got := FormatHM(tt.in); got != tt.want {
			t.Fatalf("FormatHM(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("14:00", 45)
	if err != nil {
		t.Fatal(err)
	}
	if got != "14:45" {
		t.Fatalf("AddMinutes(14:00, 45) = %q, want 14:45", got)
	}

	got, err = AddMinutes("09:30", 90)
	if err != nil {
		t.Fatal(err)
	}
	if got != "11:00" {
		t.Fatalf("AddMinutes(09:30, 90) = %q, want 11:00", got)
	}

	if _, err := AddMinutes("banana", 30); err == nil {
		t.Fatal("esperava erro para horário inválido")
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2025-03-10") {
		t.Fatal("data válida rejeitada")
	}
	if IsValidDate("10/03/2025") {
		t.Fatal("formato errado aceito")
	}
	if IsValidDate("2025-13-40") {
		t.Fatal("data impossível aceita")
	}
	if IsValidDate("") {
		t.Fatal("data vazia aceita")
	}
}
