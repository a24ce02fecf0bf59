package application

import (
	"context"
	"testing"
	"time"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartWith(lines int, amount float64) domain.CartView {
	items := make([]domain.CartLine, 0, lines)
	for i := 0; i < lines; i++ {
		items = append(items, domain.CartLine{ID: domain.CartLineID(i + 1), ProductID: 7, Quantity: 1})
	}
	return domain.CartView{ID: 1, Items: items, TotalItems: lines, TotalAmount: amount}
}

func TestCartStoreFetchReplacesViewWholesale(t *testing.T) {
	t.Parallel()

	api := &fakeCartAPI{cartFn: func(int) (domain.CartView, error) {
		return cartWith(2, 59.98), nil
	}}
	store := NewCartStore(api, &recordingNotifier{})

	require.NoError(t, store.Fetch(context.Background()))

	cart, ok := store.Cart()
	require.True(t, ok)
	assert.Equal(t, cartWith(2, 59.98), cart)
	assert.Equal(t, 2, store.ItemCount())
	assert.InDelta(t, 59.98, store.TotalAmount(), 1e-9)
	assert.False(t, store.Loading())
}

func TestCartStoreFetchFailureKeepsPreviousView(t *testing.T) {
	t.Parallel()

	api := &fakeCartAPI{cartFn: func(call int) (domain.CartView, error) {
		if call == 1 {
			return cartWith(1, 29.99), nil
		}
		return domain.CartView{}, &domain.RequestError{Kind: domain.ErrorKindNetwork}
	}}
	store := NewCartStore(api, &recordingNotifier{})

	require.NoError(t, store.Fetch(context.Background()))
	require.Error(t, store.Fetch(context.Background()))

	cart, ok := store.Cart()
	require.True(t, ok)
	assert.Equal(t, cartWith(1, 29.99), cart)
	assert.False(t, store.Loading())
}

func TestCartStoreDerivedReadsDefaultToZero(t *testing.T) {
	t.Parallel()

	store := NewCartStore(&fakeCartAPI{}, &recordingNotifier{})

	_, ok := store.Cart()
	assert.False(t, ok)
	assert.Zero(t, store.ItemCount())
	assert.Zero(t, store.TotalAmount())
}

func TestCartStoreAddItemRefetchesAuthoritativeCart(t *testing.T) {
	t.Parallel()

	api := &fakeCartAPI{cartFn: func(int) (domain.CartView, error) {
		return cartWith(3, 89.97), nil
	}}
	notifier := &recordingNotifier{}
	store := NewCartStore(api, notifier)

	ok := store.AddItem(context.Background(), domain.CartAddition{ProductID: 7, Quantity: 1, Size: "M", Color: "Red"})
	require.True(t, ok)

	// Held view is the server's latest response, never a local patch.
	cart, loaded := store.Cart()
	require.True(t, loaded)
	assert.Equal(t, cartWith(3, 89.97), cart)
	assert.Equal(t, 1, api.addCalls)
	assert.Equal(t, 1, api.cartCalls)
	assert.Equal(t, []string{"Item added to cart!"}, notifier.successes)
}

func TestCartStoreAddItemFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	api := &fakeCartAPI{
		addErr: &domain.RequestError{Kind: domain.ErrorKindServer, StatusCode: 400, Detail: "Product is out of stock"},
	}
	notifier := &recordingNotifier{}
	store := NewCartStore(api, notifier)

	ok := store.AddItem(context.Background(), domain.CartAddition{ProductID: 7, Quantity: 1})
	require.False(t, ok)

	_, loaded := store.Cart()
	assert.False(t, loaded)
	assert.Equal(t, 0, api.cartCalls)
	assert.Equal(t, []string{"Product is out of stock"}, notifier.failures)
	assert.Empty(t, notifier.successes)
}

func TestCartStoreAddItemSucceedsWhenRefetchFails(t *testing.T) {
	t.Parallel()

	api := &fakeCartAPI{cartFn: func(call int) (domain.CartView, error) {
		if call == 1 {
			return cartWith(1, 29.99), nil
		}
		return domain.CartView{}, &domain.RequestError{Kind: domain.ErrorKindNetwork}
	}}
	notifier := &recordingNotifier{}
	store := NewCartStore(api, notifier)

	require.NoError(t, store.Fetch(context.Background()))

	ok := store.AddItem(context.Background(), domain.CartAddition{ProductID: 7, Quantity: 1, Size: "M", Color: "Red"})
	require.True(t, ok)

	// The add's success notification stands; the held view stays at its
	// pre-add snapshot until a later fetch succeeds.
	assert.Equal(t, []string{"Item added to cart!"}, notifier.successes)
	assert.Empty(t, notifier.failures)

	cart, loaded := store.Cart()
	require.True(t, loaded)
	assert.Equal(t, cartWith(1, 29.99), cart)
}

func TestCartStoreUpdateItemRefetches(t *testing.T) {
	t.Parallel()

	api := &fakeCartAPI{cartFn: func(int) (domain.CartView, error) {
		return cartWith(1, 59.98), nil
	}}
	store := NewCartStore(api, &recordingNotifier{})

	require.True(t, store.UpdateItem(context.Background(), 1, 2))
	assert.Equal(t, 1, api.updateCalls)
	assert.Equal(t, 0, api.removeCalls)
	assert.Equal(t, 1, api.cartCalls)
}

func TestCartStoreUpdateItemRoutesZeroQuantityToRemoval(t *testing.T) {
	t.Parallel()

	api := &fakeCartAPI{}
	notifier := &recordingNotifier{}
	store := NewCartStore(api, notifier)

	require.True(t, store.UpdateItem(context.Background(), 1, 0))
	assert.Equal(t, 0, api.updateCalls)
	assert.Equal(t, 1, api.removeCalls)
	assert.Equal(t, []string{"Item removed from cart"}, notifier.successes)
}

func TestCartStoreRemoveItemFailureNotifies(t *testing.T) {
	t.Parallel()

	api := &fakeCartAPI{
		removeErr: &domain.RequestError{Kind: domain.ErrorKindServer, StatusCode: 404, Detail: "Cart item not found"},
	}
	notifier := &recordingNotifier{}
	store := NewCartStore(api, notifier)

	require.False(t, store.RemoveItem(context.Background(), 42))
	assert.Equal(t, []string{"Cart item not found"}, notifier.failures)
	assert.Equal(t, 0, api.cartCalls)
}

func TestCartStoreClearCartEmptiesLocallyWithoutRefetch(t *testing.T) {
	t.Parallel()

	api := &fakeCartAPI{cartFn: func(int) (domain.CartView, error) {
		return cartWith(2, 59.98), nil
	}}
	notifier := &recordingNotifier{}
	store := NewCartStore(api, notifier)

	require.NoError(t, store.Fetch(context.Background()))
	require.Equal(t, 2, store.ItemCount())

	require.True(t, store.ClearCart(context.Background()))

	assert.Equal(t, 1, api.clearCalls)
	assert.Equal(t, 1, api.cartCalls, "clear must not trigger a refetch")
	assert.Zero(t, store.ItemCount())
	assert.Zero(t, store.TotalAmount())
	assert.Equal(t, []string{"Cart cleared"}, notifier.successes)
}

func TestCartStoreStaleFetchResponseIsDiscarded(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	api := &fakeCartAPI{cartFn: func(call int) (domain.CartView, error) {
		if call == 1 {
			<-release
			return cartWith(5, 149.95), nil
		}
		return cartWith(1, 29.99), nil
	}}
	store := NewCartStore(api, &recordingNotifier{})

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_ = store.Fetch(context.Background())
	}()

	// Wait for the first fetch to be in flight before issuing the second.
	require.Eventually(t, func() bool {
		api.mu.Lock()
		defer api.mu.Unlock()
		return api.cartCalls == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, store.Fetch(context.Background()))
	require.Equal(t, 1, store.ItemCount())

	close(release)
	<-firstDone

	// The late first response lost the race and must not overwrite the
	// newer view.
	assert.Equal(t, 1, store.ItemCount())
	assert.InDelta(t, 29.99, store.TotalAmount(), 1e-9)
	assert.False(t, store.Loading())
}
