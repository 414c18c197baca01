package metrics

import "testing"

func TestResourceAttrUsesResourceKey(t *testing.T) {
	attr := resourceAttr("Standings")
	if string(attr.Key) != AttrResource || attr.Value.AsString() != "Standings" {
		t.Fatalf("unexpected attribute %v", attr)
	}
}
