/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command hookjournal inspects the change journal written by tracked schemas.
package main

func main() {
	Execute()
}
