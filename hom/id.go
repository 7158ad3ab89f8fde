package hom

import (
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

type idData[Id comparable] struct{}

func (idData[Id]) skip(*order.Order[Id]) bool { return true }
func (idData[Id]) selector() bool             { return true }

func (idData[Id]) apply(_ *Context[Id], _ *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	return s, nil
}

func (idData[Id]) Hash() uint64 { return hashutil.FNV1a([]byte("id")) }

func (idData[Id]) Equal(other data[Id]) bool {
	_, ok := other.(idData[Id])
	return ok
}
