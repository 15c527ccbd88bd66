/*
Package linkedlist implements a singly linked list and a doubly linked list.

Both lists match values with ==, and every value-based operation acts on the first
matching node in head to tail order.

The lists are not safe for concurrent access. Guard a list shared between goroutines
with a mutex.

# Example Usage

## Singly

The following example shows all basic operations of the singly linked list.

	func singlyExample() {
		l := linkedlist.NewSingly[int]()

		l.Append(10)
		l.Append(20)
		l.Prepend(5)

		fmt.Println(l, l.Len()) // [5 -> 10 -> 20] 3

		// Insert 15 right after the first node holding 10.
		err := l.InsertAfter(10, 15)
		if err != nil {
			// Handle error.
		}

		fmt.Println(l) // [5 -> 10 -> 15 -> 20]

		err = l.Delete(5)
		if err != nil {
			// Handle error.
		}

		fmt.Println(l.Search(5), l.Search(15)) // false true

		// Deleting a missing value leaves the list unchanged and returns an error.
		err = l.Delete(42) // errors.Is(err, linkedlist.ErrNotFound) == true

		for v := range l.All() {
			fmt.Println(v) // 10, 15, 20
		}
	}

## Doubly

The doubly linked list keeps a tail, so appending is O(1) and the list can be
walked in both directions.

	func doublyExample() {
		l := linkedlist.NewDoubly[int]()

		// Inserting into an empty list has no anchor.
		err := l.InsertAfter(1, 2) // errors.Is(err, linkedlist.ErrEmptyList) == true

		l.Append(10)
		l.Append(20)
		l.Append(15)

		err = l.Delete(20)
		if err != nil {
			// Handle error.
		}

		fmt.Println(l.Values())         // [10 15]
		fmt.Println(l.BackwardValues()) // [15 10]
		fmt.Println(l.Tail().Value)     // 15

		for v := range l.Backward() {
			fmt.Println(v) // 15, 10
		}
	}
*/
package linkedlist
