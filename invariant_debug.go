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

//go:build uriqdebug

package uriq

import "fmt"

// assertConsistent re-runs the splitter over freshly spliced text and
// panics on any divergence from the arithmetically maintained indices.
func (c core) assertConsistent() {
	sl, qa, fa := splitAddress(c.text)
	if sl != c.schemeLen || qa != c.queryAt || fa != c.fragmentAt {
		panic(fmt.Sprintf("uriq: index drift after splice of %q: have (%d, %d, %d), want (%d, %d, %d)",
			c.text, c.schemeLen, c.queryAt, c.fragmentAt, sl, qa, fa))
	}
}
