// Package web runs the background on an HTML canvas when compiled to js/wasm.
// The canvas with id "particles-bg" is driven by requestAnimationFrame; a page
// without that canvas gets no effect.
package web
