// Package cache provides a generic thread-safe cache with optional soft
// limit and single-flight loading.
//
//	faces := cache.New[faceKey, *Face](0)
//	face, err := faces.GetOrLoad(key, func() (*Face, error) {
//	    return loadFace(key)
//	})
//
// Concurrent GetOrLoad calls for the same missing key run the loader
// once; the other callers wait for and share its result. Failed loads
// are not cached.
package cache
