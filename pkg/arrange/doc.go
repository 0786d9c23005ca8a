// Package arrange computes how each card is presented in an arrangement mode.
//
// [Arrange] is a pure function of a [Context] (mode, workspace area and
// tuning options), the cards in display order, and the focused card id. It
// returns one [Transform] per card. Switching modes is a recomputation;
// no state migrates between modes.
//
// # Modes
//
//   - [ModeFree]: cards keep their own geometry and z-index.
//   - [ModeStack]: cards share the area and fan out vertically from the
//     focused card, shrinking and fading with distance.
//   - [ModeSplit]: equal-width lanes, two-up and then three-up as the card
//     count grows.
//   - [ModeFocus]: only the focused card is visible; the rest stay in place,
//     scaled down and fully transparent.
//   - [ModeGrid]: uniform thumbnails.
//
// Every mode except free is layout-managed: the Transform's Frame replaces
// the card's own rectangle.
package arrange
