package locale

func (r *Resolver) CachedItems() int {
	return r.cache.ItemCount()
}
