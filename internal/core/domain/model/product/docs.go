// Package product provides the Product aggregate for the restaurant menu.
//
// Products carry current pricing and availability. Orders never reference live
// products: at order time the relevant fields are snapshotted into line items,
// so menu edits have no effect on order history.
package product
