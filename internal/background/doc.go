// Package background removes a light, low-saturation gray background from an
// image by flood-filling inward from the image border.
//
// The pipeline has four steps:
//
//  1. Classify: a pixel is background when its mean brightness is above 100
//     and no two of its channels differ by 65 or more (see IsBackground).
//  2. Seed: start points are the four corners plus every 5th pixel along each
//     border (see Seeds).
//  3. Fill: from each seed, walk the 4-connected neighbourhood with an
//     explicit stack, marking background pixels in a shared Mask. Expansion
//     stops at non-background pixels, so background-coloured areas enclosed
//     by foreground are never reached.
//  4. Clear: every marked pixel is set to (0,0,0,0).
//
// Classification always reads the original colours; pixels are cleared only
// after all fills have finished.
//
// All functions are synchronous and operate on a single image owned by the
// caller. Nothing is shared between calls.
package background
