// Package preprocess turns raw basket records into clean transactions ready
// for mining.
//
// Cleaning steps, per record:
//
//  1. trim and lowercase every label;
//  2. drop repeated labels (counted as duplicates);
//  3. drop labels not in the product catalog (counted as invalid);
//  4. drop the whole record when fewer than two items remain.
//
// Records are validated with go-playground/validator before cleaning. The
// catalog is either loaded from a products file or DefaultCatalog.
package preprocess
