package sqlinline

const QCreateProductsTable = `--sql 3c00ada1-a492-49ef-a0f7-01e918db2999
create table if not exists products (
  id text primary key,
  data jsonb not null,
  category text not null default '',
  brand text not null default '',
  price numeric,
  created_at timestamptz not null default now(),
  updated_at timestamptz not null default now()
);
`

const QCreateProductsFilterIndex = `--sql 9019436d-4b91-4eb9-afc9-79689fac47f8
create index if not exists products_category_brand_idx on products (category, brand);
`

const QListProducts = `--sql 001aa895-f744-4a59-846f-4c180883b3ce
select id, data
from products
where ($1::text = '' or category = $1::text)
  and ($2::text = '' or brand = $2::text)
  and ($3::numeric is null or coalesce(price, 0) >= $3::numeric)
  and ($4::numeric is null or coalesce(price, 0) <= $4::numeric)
order by created_at, id;
`

const QSelectProductByID = `--sql ce29c586-2ff8-47cf-84f5-a1facb9d1e35
select id, data
from products
where id = $1::text
limit 1;
`

// QInsertProduct assigns prod<N+1> from the highest numeric prodNNN id when
// $1 is blank. A duplicate id inserts nothing and returns no row.
const QInsertProduct = `--sql a3c85d56-6dc6-4a72-8c54-43efd18d3743
insert into products (id, data, category, brand, price, created_at, updated_at)
values (
  coalesce(
    nullif($1::text, ''),
    (select 'prod' || lpad((coalesce(max(substring(id from '^prod([0-9]+)$')::int), 0) + 1)::text, 3, '0') from products)
  ),
  $2::jsonb,
  $3::text,
  $4::text,
  $5::numeric,
  now(),
  now()
)
on conflict (id) do nothing
returning id;
`

const QUpdateProduct = `--sql 8ff7fbcb-80b3-4e32-b5a2-0de9bd6cb66d
update products
set data = $2::jsonb,
    category = $3::text,
    brand = $4::text,
    price = $5::numeric,
    updated_at = now()
where id = $1::text
returning id, data;
`

const QDeleteProduct = `--sql a950514d-92e7-46d4-b78b-0dc2290342c5
delete from products
where id = $1::text
returning id, data;
`
