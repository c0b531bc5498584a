/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around grammars, scanners, parsers, etc. These kinds of algorithms are often more
straightforward to describe as set constructions and operations.

Sets remember the order in which elements have first been inserted. Each()
and Values() follow this order, which keeps output of grammar analysis stable.

Unusually, all set operations are destructive! Mutating operations report
whether the receiver changed, which is what fixpoint iterations need.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
