// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

/*
Package bmpm implements Beider-Morse phonetic matching of personal names.

A name is converted into one or more phonetic spellings so that names written
in different languages can be matched approximately, e.g. for genealogical
record linkage.

Basic flow:
  - create engine (`NewPhoneticEngine`) for a name type and final rule type
  - encode names (`Encode` guesses origin languages, `EncodeLanguages` takes them)
  - compare "|"-separated spellings of two names for overlap

Encoding is table driven. Rule tables, language lists and language guessing
rules are text resources in the upstream Beider-Morse format:
  - `{gen|ash|sep}_{rules|approx|exact}_{language|common|any}.txt` rule tables
  - `{gen|ash|sep}_languages.txt` language lists
  - `{gen|ash|sep}_lang.txt` language guessing rules

A compact sample set is embedded (`DefaultRegistry`). Point a `Registry` at
any file system (`NewRegistry`) or set `EngineOptions.RulesDir` to use full
upstream tables. Registries load every resource once and share it.

Engines and registries are safe for concurrent use.
*/
package bmpm
