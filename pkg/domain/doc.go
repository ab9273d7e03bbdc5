// Package domain contains the core domain entities and types used by the
// gateway. These types represent the business concepts (the activated website
// identity and the player record handed to the host plugin) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain
