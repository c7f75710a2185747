//go:build glhal_assert

package glhal

const assertDefault = true
