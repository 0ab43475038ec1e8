// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements user interface elements, most notably
// Grid, a container laid out by the CSS Grid algorithm of package
// cssgrid. Elements contain persistent state and process user
// events.
package widget
