package common

import "testing"

func TestDefaultKeyMap_HasCriticalBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ForceQuit.Keys()) == 0 || km.ForceQuit.Keys()[0] != "ctrl+c" {
		t.Fatalf("expected ctrl+c force quit binding")
	}
	if len(km.Language.Keys()) == 0 || km.Language.Keys()[0] != "g" {
		t.Fatalf("expected g language binding")
	}
	if len(km.Tab.Keys()) == 0 || km.Tab.Keys()[0] != "tab" {
		t.Fatalf("expected tab view switch binding")
	}
}

func TestDefaultKeyMap_NoDuplicateSingleKeys(t *testing.T) {
	km := DefaultKeyMap()
	seen := map[string]string{}
	for name, keys := range map[string][]string{
		"quit":     km.Quit.Keys(),
		"like":     km.Like.Keys(),
		"comment":  km.Comment.Keys(),
		"reply":    km.Reply.Keys(),
		"more":     km.More.Keys(),
		"write":    km.Write.Keys(),
		"search":   km.Search.Keys(),
		"language": km.Language.Keys(),
	} {
		for _, k := range keys {
			if other, ok := seen[k]; ok {
				t.Fatalf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}
}
