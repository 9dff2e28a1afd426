/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package document

import "testing"

func TestClassify(t *testing.T) {
	doc, err := Parse([]byte(`{
		"direct": {"type": "color", "value": "#ffffff"},
		"reference": {"type": "color", "value": "{colors.white}"},
		"numeric": {"type": "color", "value": 1},
		"noValue": {"type": "color"},
		"emptyValue": {"type": "color", "value": ""},
		"spacing": {"type": "number", "value": "8px"},
		"typeObject": {"type": {}, "value": "#ffffff"},
		"group": {"white": {"type": "color", "value": "#ffffff"}},
		"emptyGroup": {},
		"emptyType": {"type": ""},
		"nullType": {"type": null},
		"zeroType": {"type": 0},
		"scalar": "#ffffff",
		"list": [],
		"null": null
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := map[string]Kind{
		"direct":     KindColorLeaf,
		"reference":  KindColorLeaf,
		"numeric":    KindColorLeaf,
		"noValue":    KindOtherLeaf,
		"emptyValue": KindOtherLeaf,
		"spacing":    KindOtherLeaf,
		"typeObject": KindOtherLeaf,
		"group":      KindGroup,
		"emptyGroup": KindGroup,
		"emptyType":  KindGroup,
		"nullType":   KindGroup,
		"zeroType":   KindGroup,
		"scalar":     KindNotObject,
		"list":       KindNotObject,
		"null":       KindNotObject,
	}

	members := doc.Root().Members()
	if len(members) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(members))
	}
	for _, m := range members {
		if got := Classify(m.Value); got != want[m.Key] {
			t.Errorf("Classify(%s) = %s, want %s", m.Key, got, want[m.Key])
		}
	}
}

func TestClassify_Absent(t *testing.T) {
	if got := Classify(Node{}); got != KindNotObject {
		t.Errorf("Classify(absent) = %s, want %s", got, KindNotObject)
	}
}
