/*
Package trie provides a character-level prefix tree over a vocabulary of strings.
It answers exact membership, prefix completion and a cheap approximate lookup that
falls back to the first word stored below the longest matched prefix when the query
leaves the tree. Strings are lower-cased and stripped of accents before indexing
unless configured otherwise, and arbitrary metadata can be attached to each entry.
*/
package trie
