package clickatell

import "testing"

func TestCodeTables_AllDescribed(t *testing.T) {
	for code, desc := range statusCodes {
		if desc == "" {
			t.Errorf("status code %q has an empty description", code)
		}
		if got := StatusDescription(code); got != desc {
			t.Errorf("StatusDescription(%q) = %q, want %q", code, got, desc)
		}
	}

	for code, desc := range errorCodes {
		if desc == "" {
			t.Errorf("error code %q has an empty description", code)
		}
		if got := ErrorDescription(code); got != desc {
			t.Errorf("ErrorDescription(%q) = %q, want %q", code, got, desc)
		}
	}
}

func TestCodeTables_UnknownCode(t *testing.T) {
	if _, ok := LookupError("999"); ok {
		t.Fatalf("LookupError(999) should not be known")
	}
	if _, ok := LookupStatus("999"); ok {
		t.Fatalf("LookupStatus(999) should not be known")
	}

	if got := ErrorDescription("999"); got != "Unknown Error (999)" {
		t.Fatalf("unexpected placeholder: %q", got)
	}
	if got := StatusDescription("999"); got != "Unknown Status (999)" {
		t.Fatalf("unexpected placeholder: %q", got)
	}
}
