/*
Copyright 2026 Uriq Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package uriq decomposes, rewrites and re-encodes URIs and IRIs without
// ever parsing more than their three structural delimiters.
//
// An address is held as its raw text plus the positions of the scheme ':',
// the query '?' and the fragment '#'. Splitting is a single forgiving
// pass (RFC 3986 appendix B structure, not its grammar): it never fails,
// accessors slice lazily, and mutators splice the text and shift the
// positions arithmetically. There are three forms of the same model:
//
//   - [Any] stores text exactly as given and applies no encoding;
//   - [URI] is the ASCII form, every input passed through the
//     whole-address encoder (RFC 3986);
//   - [IRI] is the Unicode form, every input passed through the
//     whole-address decoder (RFC 3987).
//
// The two projections convert to each other lazily and cache the result,
// and the codecs are built so the round trip is loss-free: an escaped
// delimiter such as "%2F" is never decoded into a live '/', and decoded
// text is never double-encoded.
//
// All three forms are immutable; mutators return new instances, or the
// receiver itself when nothing would change. [Params] parses and serializes
// query strings as an ordered multimap, and any [ParamSource] can be
// appended to an address wholesale with AddParams.
//
// The package deliberately does not resolve relative references, does not
// parse authorities into host and port, and does not validate
// scheme-specific rules. Sibling packages cover the neighbouring value
// types and plumbing: host names and email addresses
// ([github.com/uriq/uriq/host]), ports and port sets
// ([github.com/uriq/uriq/port]), hardware addresses
// ([github.com/uriq/uriq/hw]), explicit string interning
// ([github.com/uriq/uriq/intern]) and transfer records with their codecs
// ([github.com/uriq/uriq/dto]).
package uriq
