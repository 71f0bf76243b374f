package query

import "testing"

func TestParseSearchField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    SearchField
		wantErr bool
	}{
		{in: "", want: SearchTransactionReference},
		{in: "posId", want: SearchPOSID},
		{in: "POSID", want: SearchPOSID},
		{in: "customerName", want: SearchCustomerName},
		{in: "posLocation", want: SearchPOSLocation},
		{in: "iban", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSearchField(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSearchField(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSearchField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSearchField_Placeholder(t *testing.T) {
	t.Parallel()

	if got := SearchPOSID.Placeholder(); got != "Search by pos id..." {
		t.Errorf("Placeholder() = %q", got)
	}
	if got := SearchTransactionReference.Label(); got != "Transaction Reference" {
		t.Errorf("Label() = %q", got)
	}
}
