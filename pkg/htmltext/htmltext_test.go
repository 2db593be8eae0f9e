package htmltext

import "testing"

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "table cells separated",
			in:   "<table><tr><td>PNR</td><td>ABC123</td></tr><tr><td>From</td><td>DEL</td></tr></table>",
			want: "PNR ABC123 From DEL",
		},
		{
			name: "script and style removed, title kept",
			in:   "<html><head><title>Your itinerary</title><style>p{}</style></head><body><script>var a=1;</script><p>Flight  AI 302</p></body></html>",
			want: "Your itinerary Flight AI 302",
		},
		{
			name: "entities decoded",
			in:   "<p>DEL&nbsp;&rarr;&nbsp;BOM</p>",
			want: "DEL → BOM",
		},
		{
			name: "line breaks kept",
			in:   "<pre>Departure date:\t15 Jan 2025\n\n   Booked on 2 Jan 2025  </pre>",
			want: "Departure date: 15 Jan 2025\nBooked on 2 Jan 2025",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.in); got != tt.want {
				t.Errorf("Flatten() = %q, want %q", got, tt.want)
			}
		})
	}
}
